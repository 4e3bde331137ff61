package catalog

type AddMasterRequest struct {
	Name           string `validate:"required"`
	Specialization string `validate:"required"`
}

type AddProcedureRequest struct {
	Title     string  `validate:"required"`
	Price     int64   `validate:"gte=0"`
	MasterIDs []int64 `validate:"dive,gt=0"`
}
