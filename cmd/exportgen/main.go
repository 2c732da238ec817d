// Command exportgen turns curated .syms list files into a Go source file
// declaring the same lists, so the build description stays a flat text
// artifact while the surface builder consumes typed data.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wippyai/export-bridge/symbol"
)

func main() {
	var (
		listFiles = flag.String("lists", "", "Comma-separated .syms list files, merged in order")
		pkgName   = flag.String("pkg", "vmexports", "Package name of the generated file")
		varName   = flag.String("var", "Lists", "Variable name of the generated symbol.Lists")
		outPath   = flag.String("o", "", "Output file (default stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s -lists a.syms[,b.syms] [-pkg name] [-var name] [-o out.go]\n", os.Args[0])
	}
	flag.Parse()

	if *listFiles == "" {
		flag.Usage()
		os.Exit(1)
	}

	lists, err := symbol.ParseFiles(strings.Split(*listFiles, ",")...)
	if err != nil {
		log.Fatalf("failed to parse list files: %v", err)
	}

	src := generate(lists, *pkgName, *varName)

	if *outPath == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *outPath, err)
	}
}

// generate renders the lists as a Go source file. Output is deterministic:
// entry order is list order, fields are emitted in a fixed sequence.
func generate(lists symbol.Lists, pkg, varName string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by exportgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/wippyai/export-bridge/symbol\"\n\n")
	fmt.Fprintf(&b, "// %s holds the curated export lists.\n", varName)
	fmt.Fprintf(&b, "var %s = symbol.Lists{\n", varName)

	writeList(&b, "DataPointers", lists.DataPointers, false)
	writeList(&b, "DataPointersWindows", lists.DataPointersWindows, true)
	writeList(&b, "DataSymbols", lists.DataSymbols, false)
	writeList(&b, "DataSymbolsWindows", lists.DataSymbolsWindows, true)
	writeList(&b, "RuntimeFuncs", lists.RuntimeFuncs, false)
	writeList(&b, "RuntimeFuncsWindows", lists.RuntimeFuncsWindows, true)
	writeList(&b, "RuntimeFuncAddrs", lists.RuntimeFuncAddrs, false)
	writeList(&b, "CodegenFuncs", lists.CodegenFuncs, false)

	b.WriteString("}\n")
	return []byte(b.String())
}

func writeList(b *strings.Builder, field string, l symbol.List, windows bool) {
	if l.Len() == 0 {
		return
	}
	fmt.Fprintf(b, "\t%s: symbol.NewList(\n", field)
	for _, d := range l.Entries() {
		b.WriteString("\t\t")
		b.WriteString(constructor(d))
		if windows {
			b.WriteString(".OnWindows()")
		}
		b.WriteString(",\n")
	}
	b.WriteString("\t),\n")
}

func constructor(d symbol.Descriptor) string {
	switch d.Category {
	case symbol.DataPointer:
		return fmt.Sprintf("symbol.Ptr(%q)", d.Name)
	case symbol.DataSymbol:
		return fmt.Sprintf("symbol.Var(%q, %q)", d.Name, d.Type)
	case symbol.RuntimeFunc:
		return fmt.Sprintf("symbol.Func(%q)", d.Name)
	case symbol.RuntimeFuncAddrSlot:
		return fmt.Sprintf("symbol.AddrSlot(%q)", d.Name)
	case symbol.CodegenFunc:
		return fmt.Sprintf("symbol.Codegen(%q)", d.Name)
	default:
		// Parser never produces another category; a new one must be
		// wired here before it can be generated.
		panic(fmt.Sprintf("exportgen: unhandled category %v", d.Category))
	}
}
