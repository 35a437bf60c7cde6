package billingv1

// Page selects a slice of a list. PageNum counts from zero; a zero
// RowsPerPage returns every row.
type Page struct {
	PageNum     int `json:"pageNum" validate:"gte=0"`
	RowsPerPage int `json:"rowsPerPage" validate:"gte=0,lte=500"`
}
