package rest

type OrderItemIn struct {
	Flavor   string `json:"flavor"`
	Quantity int64  `json:"quantity"`
}

type CreateOrderIn struct {
	Client string        `json:"client"`
	Origin string        `json:"origin,omitempty"` // empty means MANUAL
	Items  []OrderItemIn `json:"items"`
}

type ImportOrderIn struct {
	Origin string `json:"origin,omitempty"` // empty means RD_STATION
}

type ChatTurnIn struct {
	Role string `json:"role"` // user|model
	Text string `json:"text"`
}

type AssistantIn struct {
	Message string       `json:"message"`
	History []ChatTurnIn `json:"history,omitempty"`
}
