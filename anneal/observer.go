package anneal

// Record is the state of one annealing iteration after its acceptance
// decision. Temperature is the temperature the proposal was judged at.
type Record struct {
	Iteration        uint64
	Temperature      float64
	Energy           float64 // tour length at the proposed rotation
	Delta            float64 // Energy minus the current energy
	EnergyVariation  float64
	BestEnergy       float64
	EntropyVariation float64
	BestRotation     float64
	Rotation         float64 // proposed rotation
	RotationStep     float64 // proposed minus previous rotation
	Amplitude        float64 // Brownian step amplitude
	Accepted         bool
}

// Observer receives iteration records. Observe is called synchronously from
// the annealing loop and must not retain the record's address.
type Observer interface {
	Observe(Record)
}

// Finisher is implemented by observers that want the final result.
type Finisher interface {
	Finish(Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Record)

// Observe calls f(r).
func (f ObserverFunc) Observe(r Record) { f(r) }

// observers fans records out in registration order.
type observers []Observer

func (os observers) Observe(r Record) {
	for _, o := range os {
		o.Observe(r)
	}
}

func (os observers) Finish(res Result) {
	for _, o := range os {
		if f, ok := o.(Finisher); ok {
			f.Finish(res)
		}
	}
}
