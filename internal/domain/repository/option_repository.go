package repository

// OptionRepository almacén clave-valor para estado de proceso persistente
// (clave maestra, secreto de firma). Equivale a la tabla de opciones del
// sistema que aloja al catálogo.
type OptionRepository interface {
	// Get devuelve "" sin error cuando la clave no existe.
	Get(key string) (string, error)
	Set(key, value string) error
}
