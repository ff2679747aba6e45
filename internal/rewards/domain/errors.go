package domain

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region ItemNotFoundError

type ItemNotFoundError struct {
	Msg string
}

func (e *ItemNotFoundError) Error() string {
	return e.Msg
}

func (e *ItemNotFoundError) Is(target error) bool {
	_, ok := target.(*ItemNotFoundError)
	return ok
}

//endregion

//region ItemInactiveError

type ItemInactiveError struct {
	Msg string
}

func (e *ItemInactiveError) Error() string {
	return e.Msg
}

func (e *ItemInactiveError) Is(target error) bool {
	_, ok := target.(*ItemInactiveError)
	return ok
}

//endregion

//region OutOfStockError

type OutOfStockError struct {
	Msg string
}

func (e *OutOfStockError) Error() string {
	return e.Msg
}

func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

//endregion

//region InsufficientPointsError

type InsufficientPointsError struct {
	Msg string
}

func (e *InsufficientPointsError) Error() string {
	return e.Msg
}

func (e *InsufficientPointsError) Is(target error) bool {
	_, ok := target.(*InsufficientPointsError)
	return ok
}

//endregion

//region ConflictError

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

//endregion

//region InternalError

type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}

	return e.Msg
}

func (e *InternalError) Is(target error) bool {
	_, ok := target.(*InternalError)
	return ok
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

//endregion
