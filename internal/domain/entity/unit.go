package entity

// Unit is a measurement unit shared by all members (e.g. "kg", "min").
type Unit struct {
	ID   int64
	Name string
}
