package models

// Recipient is one qualified drop recipient taken from the recipients file.
type Recipient struct {
	// Address is the EIP-55 checksummed recipient address
	Address string `json:"address" yaml:"address"`

	// Score is the qualification score from the source row
	Score float64 `json:"score" yaml:"score"`

	// Row is the 1-based row number in the source file
	Row int `json:"row" yaml:"row"`
}
