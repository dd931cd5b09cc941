package trivia

// TriviaRecord is a single piece of number trivia. The same shape is used for
// the NumbersAPI wire payload and the cached payload, so a record round-trips
// between the two without conversion.
type TriviaRecord struct {
	Text   string `json:"text"`
	Number int64  `json:"number"`
}

// Valid reports whether the record carries usable trivia text. A record with
// empty text is treated as corrupt wherever it is decoded.
func (r TriviaRecord) Valid() bool {
	return r.Text != ""
}
