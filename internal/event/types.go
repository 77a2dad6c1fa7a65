// internal/event/types.go
package event

const (
	GameStarted       EventType = "GameStarted"       // Новая игра
	InterceptorFired  EventType = "InterceptorFired"  // Data: FireData
	RocketSpawned     EventType = "RocketSpawned"     // Data: types.EntityID
	RocketIntercepted EventType = "RocketIntercepted" // Ракета сбита, Data: types.EntityID
	RocketImpact      EventType = "RocketImpact"      // Ракета долетела до земли, Data: types.EntityID
	CityDestroyed     EventType = "CityDestroyed"     // Data: индекс города
	TurretDestroyed   EventType = "TurretDestroyed"   // Data: индекс батареи
	RoundEnded        EventType = "RoundEnded"        // Data: номер раунда
	RoundStarted      EventType = "RoundStarted"      // Data: RoundData
	GameWon           EventType = "GameWon"           // Data: итоговый счёт
	GameLost          EventType = "GameLost"          // Data: итоговый счёт
)

// AllTypes — все типы событий, для подписчиков, которым нужно всё.
var AllTypes = []EventType{
	GameStarted,
	InterceptorFired,
	RocketSpawned,
	RocketIntercepted,
	RocketImpact,
	CityDestroyed,
	TurretDestroyed,
	RoundEnded,
	RoundStarted,
	GameWon,
	GameLost,
}

// FireData — данные выстрела перехватчиком.
type FireData struct {
	Turret        int
	TargetX       float64
	TargetY       float64
	AmmoRemaining int
}

// RoundData — данные начала нового раунда.
type RoundData struct {
	Round int
	Bonus int // Бонус за оставшийся боезапас
}
