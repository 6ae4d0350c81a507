package resolve

import "errors"

var (
	// Location errors 📍
	ErrOwnPathEmpty = errors.New("❌ launcher path is empty")

	// Companion errors 🧭
	ErrCompanionNotFound = errors.New("❌ companion program not found")
	ErrNotExecutable     = errors.New("❌ companion is not executable")
)
