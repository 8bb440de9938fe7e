package models

// ChatSender identifies who produced a chat message.
type ChatSender string

const (
	ChatSenderUser      ChatSender = "user"
	ChatSenderAssistant ChatSender = "assistant"
)

// ChatMessage is one entry in a user's AI assistant conversation history.
// Both the user's question and the assistant's reply are persisted so the
// conversation survives page reloads.
type ChatMessage struct {
	BaseModel
	UserID  string     `gorm:"size:36;index" json:"userId"`
	Sender  ChatSender `gorm:"size:20;not null" json:"sender"`
	Content string     `gorm:"type:text" json:"content"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
