package account

//withgen:copy
type Account struct {
	ID    string `withgen:"private"`
	email string `withgen:"public"`
	plan  string
}
