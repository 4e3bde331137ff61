package booking

type ReserveRequest struct {
	MasterID    int64  `validate:"gt=0"`
	ProcedureID int64  `validate:"gt=0"`
	SlotID      int64  `validate:"gt=0"`
	Name        string `validate:"fullname"`
	Phone       string `validate:"phone10"`
}
