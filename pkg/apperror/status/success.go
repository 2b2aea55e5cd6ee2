package status

type SuccessCode int

const (
	OK SuccessCode = 200
)
