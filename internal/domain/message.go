package domain

// ChatMessage is the platform-neutral view of a chat message the stats layer needs
type ChatMessage struct {
	ID        string `json:"id"`
	GuildID   string `json:"guild_id"`
	ChannelID string `json:"channel_id"`
	Content   string `json:"content"`
	// InteractionUserID is the user that triggered the interaction which produced
	// this message, when the platform exposes it.
	InteractionUserID string `json:"interaction_user_id,omitempty"`
}
