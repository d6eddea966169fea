package cfg

// Contract groups a name with its methods' CFGs, keyed by CFGID (spec
// §3.5).
type Contract struct {
	ID      ContractID
	Name    string
	Methods map[CFGID]*CFG
}

// NewContract returns an empty Contract.
func NewContract(id ContractID, name string) *Contract {
	return &Contract{ID: id, Name: name, Methods: make(map[CFGID]*CFG)}
}

// CompilationUnit bundles the project name, the free-function CFGs, and the
// contracts for one analysis run (spec §3.5). It is the granularity passed
// to detectors and, once built, is treated as read-only (spec §4.I).
type CompilationUnit struct {
	ProjectName string
	Functions   map[CFGID]*CFG
	Contracts   map[ContractID]*Contract

	// functionNames and methodNames resolve call targets during CFG
	// construction (spec §4.D): a free-function name maps to its CFGID,
	// and "Contract.method" maps to its owning contract and CFGID.
	functionNames map[string]CFGID
	methodNames   map[string]methodRef
}

type methodRef struct {
	contract ContractID
	cfg      CFGID
}

// NewCompilationUnit returns an empty unit for the given project name.
func NewCompilationUnit(projectName string) *CompilationUnit {
	return &CompilationUnit{
		ProjectName:   projectName,
		Functions:     make(map[CFGID]*CFG),
		Contracts:     make(map[ContractID]*Contract),
		functionNames: make(map[string]CFGID),
		methodNames:   make(map[string]methodRef),
	}
}

// RegisterFunctionName binds a free function's name to its (forward
// declared) CFGID, so call edges can target it before its body is built
// (spec §4.D: "Preregister a CFG id for every function/method/receive").
func (u *CompilationUnit) RegisterFunctionName(name string, id CFGID) {
	u.functionNames[name] = id
}

// RegisterMethodName binds a "Contract.method" pair to its contract and
// CFGID.
func (u *CompilationUnit) RegisterMethodName(contractName, methodName string, contract ContractID, id CFGID) {
	u.methodNames[contractName+"."+methodName] = methodRef{contract: contract, cfg: id}
}

// ResolveFunction looks up a free function's CFGID by name.
func (u *CompilationUnit) ResolveFunction(name string) (CFGID, bool) {
	id, ok := u.functionNames[name]
	return id, ok
}

// ResolveMethod looks up a "Contract.method" pair's CFGID by name.
func (u *CompilationUnit) ResolveMethod(contractName, methodName string) (CFGID, bool) {
	ref, ok := u.methodNames[contractName+"."+methodName]
	if !ok {
		return 0, false
	}
	return ref.cfg, true
}

// CFGByID looks up any CFG in the unit, function or method, by id.
func (u *CompilationUnit) CFGByID(id CFGID) (*CFG, bool) {
	if c, ok := u.Functions[id]; ok {
		return c, true
	}
	for _, ct := range u.Contracts {
		if c, ok := ct.Methods[id]; ok {
			return c, true
		}
	}
	return nil, false
}

// AllCFGs returns every CFG in the unit: free functions first, then methods
// grouped by contract, each in map order (callers that need determinism
// should sort by CFGID).
func (u *CompilationUnit) AllCFGs() []*CFG {
	out := make([]*CFG, 0, len(u.Functions))
	for _, c := range u.Functions {
		out = append(out, c)
	}
	for _, ct := range u.Contracts {
		for _, c := range ct.Methods {
			out = append(out, c)
		}
	}
	return out
}
