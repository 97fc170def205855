package model

// Recipient is one entry of the autocomplete directory.
type Recipient struct {
	FullName string
	IsReal   bool
}
