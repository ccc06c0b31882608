package core

// State is an opaque, exported snapshot of everything Step's behavior
// depends on: the physical register file, CPSR/SPSR, the pending-exception
// bitset, and the remaining instruction budget. No wire format is implied;
// callers that need one encode this struct themselves.
type State struct {
	Regs    [numPhysRegs]uint32
	CPSR    uint32
	SPSR    [numBanks]uint32
	Pending uint32
	Budget  int64
}

// SaveState captures a point-in-time snapshot suitable for RestoreState.
func (c *Core) SaveState() State {
	return State{
		Regs:    c.regs,
		CPSR:    c.cpsr,
		SPSR:    c.spsr,
		Pending: c.pending,
		Budget:  c.Budget,
	}
}

// RestoreState replaces the Core's architectural state with a previously
// saved snapshot. Bus, Coproc bindings, HighVectors and Logger are left
// untouched since they are host wiring, not guest-visible state.
func (c *Core) RestoreState(s State) {
	c.regs = s.Regs
	c.cpsr = s.CPSR
	c.spsr = s.SPSR
	c.pending = s.Pending
	c.Budget = s.Budget
}
