package model

type NoteJSON struct {
	Pitch    uint8 `json:"pitch"`
	Start    int64 `json:"start"`
	Duration int64 `json:"duration"`
	Velocity uint8 `json:"velocity"`
}

type DiffResponse struct {
	OnlyInA int        `json:"only_in_a"`
	OnlyInB int        `json:"only_in_b"`
	Notes   []NoteJSON `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
