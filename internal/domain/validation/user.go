package validation

import "github.com/jhoicas/inventario-ledger/internal/domain/entity"

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 6

// UserInput campos enviados para un usuario.
type UserInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// User valida nombre → email → contraseña (presente, longitud, confirmación) → rol.
// El valor devuelto conserva la contraseña en claro para que el caso de uso la hashee.
func User(in UserInput) (UserInput, error) {
	var (
		out UserInput
		err error
	)
	if out.Name, err = UserName(in.Name); err != nil {
		return UserInput{}, err
	}
	if out.Email, err = Email(in.Email); err != nil {
		return UserInput{}, err
	}
	if err = Password(in.Password, in.ConfirmPassword); err != nil {
		return UserInput{}, err
	}
	out.Password = in.Password
	if out.Role, err = Role(in.Role); err != nil {
		return UserInput{}, err
	}
	return out, nil
}

func UserName(s string) (string, error) {
	return required(s, "El nombre es requerido")
}

// Password no recorta espacios: forman parte de la contraseña.
func Password(password, confirm string) error {
	if password == "" {
		return fail("La contraseña es requerida")
	}
	if len([]rune(password)) < MinPasswordLength {
		return fail("La contraseña debe tener al menos 6 caracteres")
	}
	if password != confirm {
		return fail("Las contraseñas no coinciden")
	}
	return nil
}

func Role(s string) (string, error) {
	s, err := required(s, "El rol es requerido")
	if err != nil {
		return "", err
	}
	if !entity.ValidRole(s) {
		return "", fail("El rol no es válido")
	}
	return s, nil
}
