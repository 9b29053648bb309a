package validators

type AddressValidator interface {
	ValidateAddress(address string) error
}
