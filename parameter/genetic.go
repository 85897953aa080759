package parameter

// Genetic Algorithm - Engine Configuration
const (
	// GAPoolSize is the number of candidates in each population
	GAPoolSize = 120

	// GAEliteCount is preserved best performers per generation
	GAEliteCount = 4

	// GAPerturbationRate is probability of mutating an offspring (0.0-1.0)
	GAPerturbationRate = 0.25

	// GAPerturbationStrength is per-slot mutation probability (0.0-1.0)
	GAPerturbationStrength = 0.2

	// GAMaxGenerations caps evolution runs
	GAMaxGenerations = 400

	// GAParallelism bounds concurrent candidate evaluation
	GAParallelism = 4

	// GATournamentSize for selection pressure
	GATournamentSize = 3

	// GACrossoverMixProbability for uniform crossover
	GACrossoverMixProbability = 0.5

	// GAPerturbationStdDev scales Gaussian noise by parameter range
	GAPerturbationStdDev = 0.1
)

// Genetic Algorithm - Constraint Handling
const (
	// GAPenaltyWeight scales squared constraint violations in the score
	GAPenaltyWeight = 1e4

	// GAFeasibilityTolerance is max residual treated as satisfied
	GAFeasibilityTolerance = 1e-6
)

// Persistence
const (
	// GAPersistencePath is the default directory for run archives
	GAPersistencePath = "./runs"
)
