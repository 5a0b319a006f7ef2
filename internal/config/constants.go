package config

const (
	// Reference receiver curve fit (coefficients from the default profile)
	DefaultCoefficient1 = 0.89976
	DefaultCoefficient2 = 7.7095
	DefaultCoefficient3 = 0.111
	DefaultTxPower      = -59 // Expected RSSI at 1 meter (dBm)

	// Path loss fallback model
	PathLossExp = 2.5 // Path loss exponent (N)

	// Tuner display
	MaxRange   = 30.0 // Range ruler scale in meters
	RSSIFloor  = -100.0
	RSSICeil   = -1.0 // 0 dBm is the "undeterminable" sentinel input
	RSSIStep   = 0.5  // dBm per keypress
	TxStep     = 1    // dBm per keypress
	HistoryLen = 60   // Distance sparkline depth
	TargetFPS  = 30   // Target frames per second

	// App
	AppName    = "BLE-RANGER"
	AppVersion = "1.0"
)
