package consts

const (
	ProfilesCacheKey = "profiles:latest"
)

const (
	ScrapeRunLock = "scrape:run:lock"
)
