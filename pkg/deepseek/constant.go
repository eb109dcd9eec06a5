package deepseek

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// DefaultRequestsPerMinute caps outbound calls so one chatty user
	// cannot exhaust the API quota for everyone.
	DefaultRequestsPerMinute = 60
)
