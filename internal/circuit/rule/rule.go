package rule

import "circuit-board/internal/circuit/models"

var (
	resistorSource = models.NewPairKey(models.Resistor, models.Source)
	ledResistor    = models.NewPairKey(models.LED, models.Resistor)
)

// Lit сообщает, горит ли светодиод: начало резистора касается начала
// источника, а начало светодиода - конца резистора.
func Lit(connections models.Connections) bool {
	return connections[resistorSource] == models.LabelStartStart &&
		connections[ledResistor] == models.LabelStartEnd
}
