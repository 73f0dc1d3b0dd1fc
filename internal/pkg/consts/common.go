package consts

const (
	AccountStatusActive = "active"
)

// SeedAccounts 首次建表时写入的示例账号
var SeedAccounts = []string{"nba", "kingjames", "nike", "cristiano"}

const (
	// FollowerCountUnavailable 抓取失败哨兵值，带此值的快照不会入库
	FollowerCountUnavailable = -1
)

const (
	DefaultRankingTopN = 10
)
