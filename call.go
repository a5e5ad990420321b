package txmanifest

// Call represents a pending call that can be added to a ManifestBuilder.
// Call is immutable - modifier methods return new instances.
type Call struct {
	target *Target
	name   string
	args   []Value
	module ObjectModule
}

// newCall creates a Call of name on target, converting the arguments to
// Values.
func newCall(target *Target, name string, rawArgs []any) (*Call, error) {
	args := make([]Value, len(rawArgs))
	for i, arg := range rawArgs {
		val, err := toValue(arg)
		if err != nil {
			return nil, &ArgumentError{
				Instruction: target.callKind(ModuleMain),
				Index:       i,
				Err:         err,
			}
		}
		args[i] = val
	}

	return &Call{
		target: target,
		name:   name,
		args:   args,
		module: ModuleMain,
	}, nil
}

// Target returns the target of this call.
func (c *Call) Target() *Target {
	return c.target
}

// Name returns the method or function name.
func (c *Call) Name() string {
	return c.name
}

// Args returns the arguments for this call.
func (c *Call) Args() []Value {
	return c.args
}

// Module returns the object module the call is addressed to.
func (c *Call) Module() ObjectModule {
	return c.module
}

// Royalty addresses the call to the royalty module of a component.
//
// Returns a new Call with the module set.
func (c *Call) Royalty() *Call {
	return c.withModule(ModuleRoyalty)
}

// Metadata addresses the call to the metadata module of a component.
//
// Returns a new Call with the module set.
func (c *Call) Metadata() *Call {
	return c.withModule(ModuleMetadata)
}

// AccessRules addresses the call to the access rules module of a component.
//
// Returns a new Call with the module set.
func (c *Call) AccessRules() *Call {
	return c.withModule(ModuleAccessRules)
}

func (c *Call) withModule(m ObjectModule) *Call {
	clone := c.clone()
	clone.module = m
	return clone
}

// clone creates a copy of the Call with its own argument slice.
func (c *Call) clone() *Call {
	clone := *c
	clone.args = cloneValues(c.args)
	return &clone
}

// validate checks that the module fits the target type.
func (c *Call) validate() error {
	if c.module != ModuleMain && c.target.targetType != Component {
		return ErrInvalidCallModule
	}
	return nil
}

// Instruction returns the low-level instruction the call becomes.
func (c *Call) Instruction() (Instruction, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	addr, args := c.target.Address(), cloneValues(c.args)
	switch c.target.callKind(c.module) {
	case InstructionCallFunction:
		return &CallFunction{PackageAddress: addr, BlueprintName: c.target.blueprint, FunctionName: c.name, Args: args}, nil
	case InstructionCallDirectVaultMethod:
		return &CallDirectVaultMethod{VaultID: addr, MethodName: c.name, Args: args}, nil
	case InstructionCallRoyaltyMethod:
		return &CallRoyaltyMethod{Address: addr, MethodName: c.name, Args: args}, nil
	case InstructionCallMetadataMethod:
		return &CallMetadataMethod{Address: addr, MethodName: c.name, Args: args}, nil
	case InstructionCallAccessRulesMethod:
		return &CallAccessRulesMethod{Address: addr, MethodName: c.name, Args: args}, nil
	default:
		return &CallMethod{Address: addr, MethodName: c.name, Args: args}, nil
	}
}
