package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidGrade   ErrCode = "INVALID_GRADE"
	ErrInvalidCredits ErrCode = "INVALID_CREDITS"
	ErrOutOfRange     ErrCode = "OUT_OF_RANGE"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validierung fehlgeschlagen. Bitte Eingaben prüfen."
	case ErrInvalidPayload:
		return "Ungültige Anfrage."
	case ErrInvalidGrade:
		return "Ungültige Eingabe für die Note. Erlaubt sind 1,0 bis 5,0, 'A' oder '-'."
	case ErrInvalidCredits:
		return "Ungültige Eingabe für die ECTS."
	case ErrOutOfRange:
		return "Wert außerhalb des erlaubten Bereichs. Noten liegen zwischen 1,0 und 5,0, ECTS sind ganze Zahlen ab 0."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Kurs nicht gefunden."
	case ErrConflict:
		return "Dieser Kurscode ist bereits vergeben."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Interner Fehler. Die Änderung wurde nicht gespeichert."
	default:
		return "Unerwarteter Fehler."
	}
}
