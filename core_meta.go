package mal

func init() {
	registerCoreBuiltin("meta", coreMeta)
	registerCoreBuiltin("with-meta", coreWithMeta)
}

func coreMeta(args []*Value) (*Value, error) {
	if err := exactArgs("meta", args, 1); err != nil {
		return nil, err
	}
	return args[0].Meta(), nil
}

// with-meta returns a fresh value with the metadata pointer replaced. Only
// the types that carry metadata accept it.
func coreWithMeta(args []*Value) (*Value, error) {
	if err := exactArgs("with-meta", args, 2); err != nil {
		return nil, err
	}
	if !args[0].hasMetaSlot() {
		return nil, errBadArguments(callForm("with-meta", args))
	}
	return args[0].WithMeta(args[1]), nil
}
