package hashtable

// SetCapacityLimit lowers the growth ceiling for the duration of a test and
// returns a function restoring the previous value.
func SetCapacityLimit(n int) (restore func()) {
	prev := capacityLimit
	capacityLimit = n

	return func() { capacityLimit = prev }
}
