package cpu

// An execFunc implements one instruction's semantics. mode is the
// instruction's addressing mode (needed to distinguish Accumulator targets
// from memory targets in RMW instructions); addr is the effective operand
// address already computed by resolve (meaningless for Implied/Accumulator).
type execFunc func(c *Cpu, mode AddressingMode, addr uint16)

// Loads

func opLDA(c *Cpu, _ AddressingMode, addr uint16) {
	c.A = c.Read(addr)
	c.P.UpdateZN(c.A)
}

func opLDX(c *Cpu, _ AddressingMode, addr uint16) {
	c.X = c.Read(addr)
	c.P.UpdateZN(c.X)
}

func opLDY(c *Cpu, _ AddressingMode, addr uint16) {
	c.Y = c.Read(addr)
	c.P.UpdateZN(c.Y)
}

// Stores

func opSTA(c *Cpu, _ AddressingMode, addr uint16) { c.Write(addr, c.A) }
func opSTX(c *Cpu, _ AddressingMode, addr uint16) { c.Write(addr, c.X) }
func opSTY(c *Cpu, _ AddressingMode, addr uint16) { c.Write(addr, c.Y) }

// Transfers

func opTAX(c *Cpu, _ AddressingMode, _ uint16) { c.X = c.A; c.P.UpdateZN(c.X) }
func opTAY(c *Cpu, _ AddressingMode, _ uint16) { c.Y = c.A; c.P.UpdateZN(c.Y) }
func opTXA(c *Cpu, _ AddressingMode, _ uint16) { c.A = c.X; c.P.UpdateZN(c.A) }
func opTYA(c *Cpu, _ AddressingMode, _ uint16) { c.A = c.Y; c.P.UpdateZN(c.A) }
func opTSX(c *Cpu, _ AddressingMode, _ uint16) { c.X = c.S; c.P.UpdateZN(c.X) }
func opTXS(c *Cpu, _ AddressingMode, _ uint16) { c.S = c.X } // no flag change

// Stack

func opPHA(c *Cpu, _ AddressingMode, _ uint16) { c.stackPush(c.A) }

func opPLA(c *Cpu, _ AddressingMode, _ uint16) {
	c.A = c.stackPop()
	c.P.UpdateZN(c.A)
}

func opPHP(c *Cpu, _ AddressingMode, _ uint16) {
	c.stackPush(c.P.AsByte() | byte(FlagB) | byte(FlagU))
}

func opPLP(c *Cpu, _ AddressingMode, _ uint16) {
	pulled := c.stackPop()
	pulled &^= byte(FlagB)
	pulled |= byte(FlagU)
	c.P.SetFromByte(pulled)
}

// Logic

func opAND(c *Cpu, _ AddressingMode, addr uint16) {
	c.A &= c.Read(addr)
	c.P.UpdateZN(c.A)
}

func opORA(c *Cpu, _ AddressingMode, addr uint16) {
	c.A |= c.Read(addr)
	c.P.UpdateZN(c.A)
}

func opEOR(c *Cpu, _ AddressingMode, addr uint16) {
	c.A ^= c.Read(addr)
	c.P.UpdateZN(c.A)
}

// Arithmetic

func opADC(c *Cpu, _ AddressingMode, addr uint16) {
	c.adc(c.Read(addr))
}

func opSBC(c *Cpu, _ AddressingMode, addr uint16) {
	c.adc(c.Read(addr) ^ 0xFF)
}

// adc implements the shared ADC/SBC datapath: SBC is ADC of the operand's
// one's complement, using the same carry-in.
func (c *Cpu) adc(m byte) {
	carryIn := byte(0)
	if c.P.IsSet(FlagC) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(m) + uint16(carryIn)
	result := byte(sum)

	c.P.Set(FlagC, sum > 0xFF)
	overflow := (c.A^result)&(m^result)&0x80 != 0
	c.P.Set(FlagV, overflow)
	c.A = result
	c.P.UpdateZN(c.A)
}

// Increment / decrement

func opINC(c *Cpu, _ AddressingMode, addr uint16) {
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.P.UpdateZN(v)
}

func opDEC(c *Cpu, _ AddressingMode, addr uint16) {
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.P.UpdateZN(v)
}

func opINX(c *Cpu, _ AddressingMode, _ uint16) { c.X++; c.P.UpdateZN(c.X) }
func opINY(c *Cpu, _ AddressingMode, _ uint16) { c.Y++; c.P.UpdateZN(c.Y) }
func opDEX(c *Cpu, _ AddressingMode, _ uint16) { c.X--; c.P.UpdateZN(c.X) }
func opDEY(c *Cpu, _ AddressingMode, _ uint16) { c.Y--; c.P.UpdateZN(c.Y) }

// Compare

func opCMP(c *Cpu, _ AddressingMode, addr uint16) { c.compare(c.A, addr) }
func opCPX(c *Cpu, _ AddressingMode, addr uint16) { c.compare(c.X, addr) }
func opCPY(c *Cpu, _ AddressingMode, addr uint16) { c.compare(c.Y, addr) }

func (c *Cpu) compare(reg byte, addr uint16) {
	m := c.Read(addr)
	diff := reg - m
	c.P.Set(FlagC, reg >= m)
	c.P.Set(FlagZ, reg == m)
	c.P.Set(FlagN, diff&0x80 != 0)
}

// BIT

func opBIT(c *Cpu, _ AddressingMode, addr uint16) {
	v := c.Read(addr)
	c.P.Set(FlagZ, c.A&v == 0)
	c.P.Set(FlagN, v&0x80 != 0)
	c.P.Set(FlagV, v&0x40 != 0)
}

// Shifts and rotates

func opASL(c *Cpu, mode AddressingMode, addr uint16) {
	v := c.operand(mode, addr)
	c.P.Set(FlagC, v&0x80 != 0)
	result := v << 1
	c.writeResult(mode, addr, result)
	c.P.UpdateZN(result)
}

func opLSR(c *Cpu, mode AddressingMode, addr uint16) {
	v := c.operand(mode, addr)
	c.P.Set(FlagC, v&0x01 != 0)
	result := v >> 1
	c.writeResult(mode, addr, result)
	c.P.Set(FlagN, false)
	c.P.Set(FlagZ, result == 0)
}

func opROL(c *Cpu, mode AddressingMode, addr uint16) {
	v := c.operand(mode, addr)
	oldC := byte(0)
	if c.P.IsSet(FlagC) {
		oldC = 1
	}
	c.P.Set(FlagC, v&0x80 != 0)
	result := (v << 1) | oldC
	c.writeResult(mode, addr, result)
	c.P.UpdateZN(result)
}

func opROR(c *Cpu, mode AddressingMode, addr uint16) {
	v := c.operand(mode, addr)
	oldC := byte(0)
	if c.P.IsSet(FlagC) {
		oldC = 0x80
	}
	c.P.Set(FlagC, v&0x01 != 0)
	result := (v >> 1) | oldC
	c.writeResult(mode, addr, result)
	c.P.UpdateZN(result)
}

// Jumps

func opJMP(c *Cpu, _ AddressingMode, addr uint16) {
	c.PC = addr
}

// opJSR pushes the address of the last byte of the JSR instruction itself
// (not the return address), high byte first. By the time Exec runs, resolve
// has already advanced PC past both operand bytes, so PC-1 is exactly that
// address.
func opJSR(c *Cpu, _ AddressingMode, addr uint16) {
	c.pushWord(c.PC - 1)
	c.PC = addr
}

func opRTS(c *Cpu, _ AddressingMode, _ uint16) {
	c.PC = c.pullWord() + 1
}

// opRTI restores P (forcing U set, ignoring the pulled B) and PC from the
// stack. This core never raises a real IRQ/NMI of its own; RTI is provided
// so a handler that was entered by other means (or a test) can return.
func opRTI(c *Cpu, _ AddressingMode, _ uint16) {
	pulled := c.stackPop()
	pulled &^= byte(FlagB)
	pulled |= byte(FlagU)
	c.P.SetFromByte(pulled)
	c.PC = c.pullWord()
}

// opBRK pushes PC+1 (the conventional signature/reason byte slot), then P
// with B and U forced set, sets I, and loads PC from the IRQ/BRK vector.
func opBRK(c *Cpu, _ AddressingMode, _ uint16) {
	c.pushWord(c.PC + 1)
	c.stackPush(c.P.AsByte() | byte(FlagB) | byte(FlagU))
	c.P.Set(FlagI, true)
	c.PC = c.readWord(brkVectAddr)
}

// Branches

func branch(c *Cpu, addr uint16, taken bool) {
	if taken {
		c.PC = addr
	}
}

func opBPL(c *Cpu, _ AddressingMode, addr uint16) { branch(c, addr, !c.P.IsSet(FlagN)) }
func opBMI(c *Cpu, _ AddressingMode, addr uint16) { branch(c, addr, c.P.IsSet(FlagN)) }
func opBVC(c *Cpu, _ AddressingMode, addr uint16) { branch(c, addr, !c.P.IsSet(FlagV)) }
func opBVS(c *Cpu, _ AddressingMode, addr uint16) { branch(c, addr, c.P.IsSet(FlagV)) }
func opBCC(c *Cpu, _ AddressingMode, addr uint16) { branch(c, addr, !c.P.IsSet(FlagC)) }
func opBCS(c *Cpu, _ AddressingMode, addr uint16) { branch(c, addr, c.P.IsSet(FlagC)) }
func opBNE(c *Cpu, _ AddressingMode, addr uint16) { branch(c, addr, !c.P.IsSet(FlagZ)) }
func opBEQ(c *Cpu, _ AddressingMode, addr uint16) { branch(c, addr, c.P.IsSet(FlagZ)) }

// Flag ops

func opCLC(c *Cpu, _ AddressingMode, _ uint16) { c.P.Set(FlagC, false) }
func opSEC(c *Cpu, _ AddressingMode, _ uint16) { c.P.Set(FlagC, true) }
func opCLI(c *Cpu, _ AddressingMode, _ uint16) { c.P.Set(FlagI, false) }
func opSEI(c *Cpu, _ AddressingMode, _ uint16) { c.P.Set(FlagI, true) }
func opCLV(c *Cpu, _ AddressingMode, _ uint16) { c.P.Set(FlagV, false) }
func opCLD(c *Cpu, _ AddressingMode, _ uint16) { c.P.Set(FlagD, false) }
func opSED(c *Cpu, _ AddressingMode, _ uint16) { c.P.Set(FlagD, true) }

// No-op

func opNOP(c *Cpu, _ AddressingMode, _ uint16) {}
