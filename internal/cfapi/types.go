package cfapi

import "encoding/json"

// Deployment is one build/publish event of a Pages project.
type Deployment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	CreatedOn   string `json:"created_on"`
	Environment string `json:"environment"`
}

// LogEntry is a single line of a deployment's build log.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// APIMessage is the code/message pair used in the v4 response envelope.
type APIMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DeploymentList decodes the `result` field of the deployments endpoint.
// The API normally returns an array, but a filtered query can hand back
// a bare deployment object; both shapes resolve to a uniform slice.
type DeploymentList []Deployment

func (l *DeploymentList) UnmarshalJSON(data []byte) error {
	var many []Deployment
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one Deployment
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = DeploymentList{one}
	return nil
}

// DeploymentsResponse represents the deployments list API response
type DeploymentsResponse struct {
	Success bool           `json:"success"`
	Errors  []APIMessage   `json:"errors"`
	Result  DeploymentList `json:"result"`
}

// LogsResponse represents the deployment log history API response
type LogsResponse struct {
	Success bool         `json:"success"`
	Errors  []APIMessage `json:"errors"`
	Result  struct {
		Logs []LogEntry `json:"logs"`
	} `json:"result"`
}
