package purchase

// Status do ciclo de vida de uma compra. PointsReceived é um flag ortogonal,
// nunca um status.
const (
	StatusPending   = "PENDING"   // comprada, unidades a caminho
	StatusDelivered = "DELIVERED" // entregue, unidades em estoque
	StatusSold      = "SOLD"      // vendida, unidades fora do estoque
)

// ValidStatus informa se s é um status conhecido.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusDelivered, StatusSold:
		return true
	}
	return false
}

// CanTransition informa se a mudança from→to é permitida pela máquina de
// status: PENDING→DELIVERED e DELIVERED→SOLD, nada mais.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusDelivered
	case StatusDelivered:
		return to == StatusSold
	}
	return false
}
