package argparse_test

import (
	"fmt"

	"github.com/pychamber/chamber/argparse"
)

func ExampleRegistry_Parse() {
	r := argparse.NewRegistry()
	_ = r.Register(argparse.OptionSpec{
		Name:     "get_params",
		Aliases:  []string{"-get_params", "--get_params"},
		Arity:    argparse.OneOrMore(),
		Required: true,
	})
	_ = r.Register(argparse.OptionSpec{
		Name:     "exec",
		Aliases:  []string{"-exec", "--exec"},
		Arity:    argparse.CollectUntilNextKnown(),
		Required: true,
	})

	res, err := r.Parse([]string{"--exec", "ls", "-la", "--get_params", "/p"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("get_params: %q\nexec      : %q\n", res.Strings("get_params"), res.Strings("exec"))

	// Output:
	// get_params: ["/p"]
	// exec      : ["ls" "-la"]
}

func ExampleRegistry_ParseKnown() {
	r := argparse.NewRegistry()
	_ = r.Register(argparse.OptionSpec{
		Name:    "cmd",
		Aliases: []string{"+cmd"},
		Arity:   argparse.CollectUntilNextKnown(),
	})
	_ = r.Register(argparse.OptionSpec{
		Name:    "out",
		Aliases: []string{"+o"},
		Arity:   argparse.Fixed(1),
	})

	res, err := r.ParseKnown([]string{"-v", "+cmd", "grep", "-r", "+x", "+o", "log.txt"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("cmd    : %q\nout    : %q\nunknown: %q\n", res.Strings("cmd"), res.String("out"), res.Unknown)

	// Output:
	// cmd    : ["grep" "-r" "+x"]
	// out    : "log.txt"
	// unknown: ["-v"]
}

func ExampleSelectPrefix() {
	c, _ := argparse.SelectPrefix("-")
	fmt.Printf("%c %s\n", c, argparse.MarkerFor(c, "exec"))

	// Output:
	// ? ?dummyexec
}
