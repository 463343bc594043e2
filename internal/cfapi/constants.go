package cfapi

// Cloudflare API endpoints
const (
	// APIBase is the public Cloudflare v4 API root.
	APIBase = "https://api.cloudflare.com/client/v4"

	deploymentsPath    = "/accounts/%s/pages/projects/%s/deployments"                 // requires accountID, projectName
	deploymentLogsPath = "/accounts/%s/pages/projects/%s/deployments/%s/history/logs" // requires accountID, projectName, deploymentID
)

// EnvAPIBase overrides the API base URL when set (tests, proxies).
const EnvAPIBase = "CLOUDFLARE_API_BASE"
