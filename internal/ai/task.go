package ai

// Task selects both the prompt template and the fallback rule for a
// generation request.
type Task string

const (
	TaskSEO       Task = "seo"
	TaskPricing   Task = "pricing"
	TaskMarketing Task = "marketing"
)

// Payload carries the loosely-typed item or context fields a generation
// request is built from. Fields are optionally consumed; no shape is enforced
// beyond the task type.
type Payload map[string]any
