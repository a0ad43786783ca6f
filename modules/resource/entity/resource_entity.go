package entity

// ResourceType tags a preparation resource.
type ResourceType string

const (
	ResourceTypeMockTest ResourceType = "mock-test"
	ResourceTypeAIQuiz   ResourceType = "ai-quiz"
)

// Resource is a static preparation resource shown on the resources page.
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ResourceType `json:"type"`
	Link        string       `json:"link"`
}

// QuizQuestion is one entry of the fixed quiz pool. Answer is the index into
// Options and is never serialized to clients.
type QuizQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"-"`
}

// Material is a downloadable study file stored in S3.
type Material struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}
