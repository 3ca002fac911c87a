package constant

const (
	ChatMessageRoleUser = "user"
	ChatMessageRoleAI   = "ai"
)

const (
	ChatStatusSuccess   = "success"
	ChatStatusNoCredits = "no_credits"
	ChatStatusError     = "error"
)

const (
	PlanTypeStandard = "standard"
	PlanTypeGenius   = "genius"
)

const (
	MediumSinhala = "Sinhala"
	MediumEnglish = "English"
)
