package main

// @title HomeValue Aggregator API
// @version 1.0
// @description Aggregates property details for an address from multiple AVM providers and returns them in a standardized schema.
// @BasePath /api
func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)

	app.InitializeServer()
	app.StartServer()
}
