package catalog

import "time"

// Clock fournit l'heure courante utilisée pour les fenêtres de promotion
// et la fraîcheur. Injectable pour des tests déterministes.
type Clock interface {
	Now() time.Time
}

// SystemClock est l'horloge réelle utilisée en production
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// MediaResolver transforme un chemin objet (relatif au bucket) en URL
// publique. Retourne une chaîne vide quand le chemin est absent ou que
// la résolution échoue : le snapshot dégrade proprement.
type MediaResolver func(path string) string
