package nunit

// suite builds a suite node and links its children back to it.
func suite(name, typ string, children ...*Node) *Node {
	n := &Node{Kind: KindSuite, Name: name, Type: typ, Children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func passing(name string) *Node {
	return &Node{Kind: KindCase, Name: name, Success: "true", Passed: true, Executed: true}
}

func failing(name string) *Node {
	return &Node{Kind: KindCase, Name: name, Success: "false", Passed: false, Executed: true,
		Failure: &Failure{Message: "boom", StackTrace: "at " + name}}
}

func notRun(name string) *Node {
	return &Node{Kind: KindCase, Name: name, Success: "true", Passed: true, Executed: false}
}
