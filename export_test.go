package covmark

func GateActive() bool { return gate.Active() }

func Depth() int { return registry.Depth() }

func (c *Counter) Store(v uint32) { c.n.Store(v) }

// SetVerbose overrides the loaded Verbose setting until restore is called.
func SetVerbose(v bool) (restore func()) {
	setup()
	old := config.Verbose
	config.Verbose = v
	return func() { config.Verbose = old }
}
