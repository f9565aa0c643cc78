package telegramdomain

// Update é uma mensagem recebida pelo bot já reduzida ao que os comandos usam
type Update struct {
	UpdateID  int    `json:"update_id"`
	ChatID    int64  `json:"chat_id"`
	MessageID int    `json:"message_id"`
	Username  string `json:"username,omitempty"`
	Text      string `json:"text"`
	Command   string `json:"command,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

func (u Update) IsCommand() bool {
	return u.Command != ""
}

type Command struct {
	Name        string `json:"command"`
	Description string `json:"description"`
}
