package apiv1

type WizardOption struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Uses  int64  `json:"uses,omitempty"`
}

// WizardTurn is the next question of a conversation. Once Done is set the conversation is over and Beers
// holds the catalog entries matching Filters.
type WizardTurn struct {
	SessionId string          `json:"sessionId"`
	State     string          `json:"state"`
	Question  string          `json:"question"`
	Options   []*WizardOption `json:"options"`
	Filters   Filters         `json:"filters,omitempty"`
	Done      bool            `json:"done"`
	Beers     []*Beer         `json:"beers,omitempty"`
}

type StartConversationRequest struct{}

type StartConversationResponse struct {
	Turn *WizardTurn `json:"turn"`
}

type AnswerRequest struct {
	SessionId string `json:"sessionId"`
	Choice    string `json:"choice"`
}

type AnswerResponse struct {
	Turn *WizardTurn `json:"turn"`
}

type GetConversationRequest struct {
	SessionId string `json:"sessionId"`
}

type GetConversationResponse struct {
	Turn *WizardTurn `json:"turn"`
}

type CloseConversationRequest struct {
	SessionId string `json:"sessionId"`
}

type CloseConversationResponse struct{}
