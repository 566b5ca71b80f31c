package validation

// ProviderInput campos enviados para un proveedor.
type ProviderInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Provider valida nombre → email → teléfono → dirección.
func Provider(in ProviderInput) (ProviderInput, error) {
	var (
		out ProviderInput
		err error
	)
	if out.Name, err = ProviderName(in.Name); err != nil {
		return ProviderInput{}, err
	}
	if out.Email, err = Email(in.Email); err != nil {
		return ProviderInput{}, err
	}
	if out.Phone, err = Phone(in.Phone); err != nil {
		return ProviderInput{}, err
	}
	if out.Address, err = Address(in.Address); err != nil {
		return ProviderInput{}, err
	}
	return out, nil
}

func ProviderName(s string) (string, error) {
	return required(s, "El nombre del proveedor es requerido")
}

func Phone(s string) (string, error) {
	return required(s, "El teléfono es requerido")
}

func Address(s string) (string, error) {
	return required(s, "La dirección es requerida")
}
