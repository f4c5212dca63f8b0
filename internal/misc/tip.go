package misc

type Tip struct {
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

func NewTip(text string, topic string) *Tip {
	return &Tip{
		Text:  text,
		Topic: topic,
	}
}
