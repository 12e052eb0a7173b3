package model

// Payout odds (N:1) for every bet type on an American double-zero table
const (
	StraightBet  = 35
	SplitBet     = 17
	StreetBet    = 11
	CornerBet    = 8
	LineBet      = 5
	DozenBet     = 2
	ColumnBet    = 2
	EvenMoneyBet = 1
	FiveBet      = 6
)
