package main

const Version = "1.0.0"

// Sample estimates run when no subcommand is given.
const (
	SampleBudget    = "10000"
	SampleBuyPrice  = "20"
	SamplePercent   = "100"
	SampleSellPrice = "30"
)
