package shelters

// Shelter es una sucursal (branch) del refugio.
type Shelter struct {
	BranchID int64  `db:"branchid"`
	PhoneNum string `db:"phonenum"`
	Address  string `db:"shelteraddress"`
}
