package entity

import "time"

// Device representa un dispositivo móvil/escáner vinculado al servidor.
// El UUID lo genera el cliente y es estable entre reinstalaciones; JTI es el
// identificador del token activo: como hay a lo sumo uno por dispositivo, el
// re-registro rota el JTI y deja inválido cualquier token anterior.
type Device struct {
	UUID         string
	Name         string
	JTI          string
	RegisteredAt time.Time
	LastSeen     time.Time
}
