package symbol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wippyai/export-bridge/errors"
)

// Section headers of the .syms list-file format. The format is
// line-oriented: '#' starts a comment, '[section]' switches the target
// list, every other non-blank line is 'name' or 'name type'.
const (
	sectionDataPointers        = "data-pointers"
	sectionDataPointersWindows = "data-pointers-windows"
	sectionDataSymbols         = "data-symbols"
	sectionDataSymbolsWindows  = "data-symbols-windows"
	sectionRuntimeFuncs        = "runtime-funcs"
	sectionRuntimeFuncsWindows = "runtime-funcs-windows"
	sectionRuntimeFuncAddrs    = "runtime-func-addrs"
	sectionCodegenFuncs        = "codegen-funcs"
)

// Parse reads curated lists from a .syms stream. Entry order within each
// section is preserved verbatim.
func Parse(r io.Reader) (Lists, error) {
	var lists Lists

	var target *List
	var category Category
	var platform Platform

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return Lists{}, errors.ParseFailed(
					fmt.Sprintf("line %d: malformed section header %q", lineNo, line), nil)
			}
			section := line[1 : len(line)-1]
			platform = PlatformAny
			switch section {
			case sectionDataPointers:
				target, category = &lists.DataPointers, DataPointer
			case sectionDataPointersWindows:
				target, category = &lists.DataPointersWindows, DataPointer
				platform = PlatformWindows
			case sectionDataSymbols:
				target, category = &lists.DataSymbols, DataSymbol
			case sectionDataSymbolsWindows:
				target, category = &lists.DataSymbolsWindows, DataSymbol
				platform = PlatformWindows
			case sectionRuntimeFuncs:
				target, category = &lists.RuntimeFuncs, RuntimeFunc
			case sectionRuntimeFuncsWindows:
				target, category = &lists.RuntimeFuncsWindows, RuntimeFunc
				platform = PlatformWindows
			case sectionRuntimeFuncAddrs:
				target, category = &lists.RuntimeFuncAddrs, RuntimeFuncAddrSlot
			case sectionCodegenFuncs:
				target, category = &lists.CodegenFuncs, CodegenFunc
			default:
				return Lists{}, errors.ParseFailed(
					fmt.Sprintf("line %d: unknown section %q", lineNo, section), nil)
			}
			continue
		}

		if target == nil {
			return Lists{}, errors.ParseFailed(
				fmt.Sprintf("line %d: entry %q before any section header", lineNo, line), nil)
		}

		name, typ, hasType := strings.Cut(line, " ")
		if !hasType {
			name, typ, hasType = strings.Cut(line, "\t")
		}
		typ = strings.TrimSpace(typ)

		if hasType && category != DataSymbol {
			return Lists{}, errors.ParseFailed(
				fmt.Sprintf("line %d: type annotation on %s entry %q", lineNo, category, name), nil)
		}
		if category == DataSymbol && typ == "" {
			return Lists{}, errors.ParseFailed(
				fmt.Sprintf("line %d: data-symbol entry %q missing declared type", lineNo, name), nil)
		}

		target.Append(Descriptor{
			Name:     name,
			Type:     typ,
			Category: category,
			Platform: platform,
		})
	}
	if err := sc.Err(); err != nil {
		return Lists{}, errors.ParseFailed("read list stream", err)
	}

	return lists, nil
}

// ParseFile reads curated lists from a .syms file on disk.
func ParseFile(path string) (Lists, error) {
	f, err := os.Open(path)
	if err != nil {
		return Lists{}, errors.ParseFailed(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	lists, err := Parse(f)
	if err != nil {
		return Lists{}, errors.ParseFailed(fmt.Sprintf("parse %s", path), err)
	}
	return lists, nil
}

// ParseFiles reads and merges several .syms files in argument order.
func ParseFiles(paths ...string) (Lists, error) {
	var merged Lists
	for _, path := range paths {
		lists, err := ParseFile(path)
		if err != nil {
			return Lists{}, err
		}
		merged = merged.Merge(lists)
	}
	return merged, nil
}
