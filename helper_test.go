package fintrack

// EUR is a helper for tests to create euro money from const.
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for tests to create usd money from const.
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for tests to create money with no currency set.
func NO(v float64) Money { return M(v, "") }

// day is a shorthand for tests building dates from their canonical form.
func day(s string) Date { return MustParse(s) }
