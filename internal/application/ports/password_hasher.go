package ports

import "context"

// PasswordHasher define el puerto de salida para el hash unidireccional de contraseñas.
// La aplicación solo conoce este contrato; el adaptador (bcrypt) vive en infraestructura.
type PasswordHasher interface {
	// Hash devuelve el hash de raw. Debe respetar la cancelación del contexto antes de trabajar.
	Hash(ctx context.Context, raw string) (string, error)
	// Verify compara raw contra un hash previamente generado.
	Verify(ctx context.Context, raw, hash string) (bool, error)
}
