// Package forecast defines how carbon intensity forecasts reach the
// planner. Producing the forecast (statistical models, grid APIs) is an
// external concern; this package only fixes the contract.
package forecast
