package diagnostic

import "fmt"

// Code identifies a diagnostic message template.
type Code string

// Lexical errors. These are always fatal.
const (
	CodeUnterminatedString   Code = "E0001"
	CodeUnterminatedTemplate Code = "E0002"
	CodeUnterminatedComment  Code = "E0003"
	CodeUnterminatedRegex    Code = "E0004"
	CodeInvalidRegexFlags    Code = "E0005"
	CodeNumericSeparator     Code = "E0006"
	CodeInvalidNumber        Code = "E0007"
	CodeIdentifierAfterNum   Code = "E0008"
	CodeInvalidEscape        Code = "E0009"
	CodeInvalidUnicodeEscape Code = "E0010"
	CodeInvalidHexEscape     Code = "E0011"
	CodeUnexpectedCharacter  Code = "E0012"
	CodeInvalidBigInt        Code = "E0013"
)

// Fatal syntax errors.
const (
	CodeUnexpectedToken         Code = "E1001"
	CodeExpectedToken           Code = "E1002"
	CodeInvalidAssignmentTarget Code = "E1003"
	CodeEscapedKeyword          Code = "E1004"
)

// Recoverable early errors.
const (
	CodeDuplicateIdentifier       Code = "E2001"
	CodeMissingSemicolon          Code = "E2002"
	CodeIllegalReturn             Code = "E2003"
	CodeIllegalBreak              Code = "E2004"
	CodeIllegalContinue           Code = "E2005"
	CodeUndefinedLabel            Code = "E2006"
	CodeDuplicateLabel            Code = "E2007"
	CodeWithInStrict              Code = "E2008"
	CodeDeleteIdentifier          Code = "E2009"
	CodeLegacyOctalStrict         Code = "E2010"
	CodeOctalEscapeStrict         Code = "E2011"
	CodeUnexpectedReserved        Code = "E2012"
	CodeUnexpectedStrictReserved  Code = "E2013"
	CodeStrictEvalArguments       Code = "E2014"
	CodeArgumentsInField          Code = "E2015"
	CodeAwaitInParameter          Code = "E2016"
	CodeYieldInParameter          Code = "E2017"
	CodeAwaitIdentifier           Code = "E2018"
	CodeYieldIdentifier           Code = "E2019"
	CodeLetLexicalName            Code = "E2020"
	CodeDuplicateParameter        Code = "E2021"
	CodeUseStrictNonSimple        Code = "E2022"
	CodeRestNotLast               Code = "E2023"
	CodeRestTrailingComma         Code = "E2024"
	CodeRestInitializer           Code = "E2025"
	CodeGetterArity               Code = "E2026"
	CodeSetterArity               Code = "E2027"
	CodeSetterRest                Code = "E2028"
	CodeAccessorModifier          Code = "E2029"
	CodeDuplicateConstructor      Code = "E2030"
	CodeConstructorSpecial        Code = "E2031"
	CodePrivateConstructor        Code = "E2032"
	CodeStaticPrototype           Code = "E2033"
	CodeFieldConstructor          Code = "E2034"
	CodeDuplicatePrivateName      Code = "E2035"
	CodeUndefinedPrivateName      Code = "E2036"
	CodePrivateNameMisuse         Code = "E2037"
	CodePrivateDelete             Code = "E2038"
	CodeSuperOutsideMethod        Code = "E2039"
	CodeSuperCallOutsideCtor      Code = "E2040"
	CodeNewTargetOutside          Code = "E2041"
	CodeImportMetaOutsideModule   Code = "E2042"
	CodeModuleSyntaxInScript      Code = "E2043"
	CodeModuleSyntaxNotTopLevel   Code = "E2044"
	CodeOptionalChainTemplate     Code = "E2045"
	CodeInvalidLeftValue          Code = "E2046"
	CodeDuplicateDefaultCase      Code = "E2047"
	CodeForInOfInitializer        Code = "E2048"
	CodeForInOfMultipleBindings   Code = "E2049"
	CodeForOfAsync                Code = "E2050"
	CodeForOfLet                  Code = "E2051"
	CodeMissingInitializer        Code = "E2052"
	CodeDuplicateExport           Code = "E2053"
	CodeUndefinedExport           Code = "E2054"
	CodeNullishMixing             Code = "E2055"
	CodeExponentUnary             Code = "E2056"
	CodeLexicalInStatement        Code = "E2057"
	CodeFunctionInStatement       Code = "E2058"
	CodeAsyncGeneratorInStatement Code = "E2059"
	CodeParenthesizedPattern      Code = "E2060"
	CodeInvalidDestructuring      Code = "E2061"
	CodeShorthandLiteral          Code = "E2062"
	CodeCoverInitializedName      Code = "E2063"
	CodeDuplicateProto            Code = "E2064"
	CodePrivateInObject           Code = "E2065"
	CodeLineBreakBeforeArrow      Code = "E2066"
	CodeEmptyParenthesized        Code = "E2067"
	CodeParenthesizedTrailing     Code = "E2068"
	CodeSpreadInParenthesized     Code = "E2069"
	CodeLeadingComma              Code = "E2070"
	CodeThrowNewline              Code = "E2071"
	CodeYieldDelegateArgument     Code = "E2072"
	CodeFeatureVersion            Code = "E2073"
	CodeDecoratorConstructor      Code = "E2074"
	CodeDecoratorPosition         Code = "E2075"
	CodeJSXTagMismatch            Code = "E2076"
	CodeJSXAdjacent               Code = "E2077"
	CodeNewOptionalChain          Code = "E2078"
	CodeImportCallArity           Code = "E2079"
	CodeAbstractMember            Code = "E2080"
	CodeAwaitOutsideAsync         Code = "E2081"
	CodeStaticBlockAwait          Code = "E2082"
	CodeLabelledFunction          Code = "E2083"
	CodeInvalidModifier           Code = "E2084"
	CodeDuplicateModifier         Code = "E2085"
	CodeCatchParamInitializer     Code = "E2086"
	CodeEscapedContextKeyword     Code = "E2087"
	CodeTemplateInvalidEscape     Code = "E2088"
	CodeStringExportName          Code = "E2089"
	CodeIllegalUseStrictTarget    Code = "E2090"
)

var messages = map[Code]string{
	CodeUnterminatedString:   "Unterminated string constant",
	CodeUnterminatedTemplate: "Unterminated template",
	CodeUnterminatedComment:  "Unterminated comment",
	CodeUnterminatedRegex:    "Unterminated regular expression",
	CodeInvalidRegexFlags:    "Invalid regular expression flags '%s'",
	CodeNumericSeparator:     "Numeric separators are not allowed here",
	CodeInvalidNumber:        "Expected number in radix %d",
	CodeIdentifierAfterNum:   "Identifier directly after number",
	CodeInvalidEscape:        "Invalid escape sequence",
	CodeInvalidUnicodeEscape: "Invalid Unicode escape sequence",
	CodeInvalidHexEscape:     "Invalid hexadecimal escape sequence",
	CodeUnexpectedCharacter:  "Unexpected character '%s'",
	CodeInvalidBigInt:        "Invalid BigInt literal",

	CodeUnexpectedToken:         "Unexpected token %s",
	CodeExpectedToken:           "Expected '%s' but found %s",
	CodeInvalidAssignmentTarget: "Invalid left-hand side in assignment",
	CodeEscapedKeyword:          "Keyword must not contain escaped characters",

	CodeDuplicateIdentifier:       "Identifier '%s' has already been declared",
	CodeMissingSemicolon:          "Missing semicolon",
	CodeIllegalReturn:             "Illegal return statement",
	CodeIllegalBreak:              "Illegal break statement",
	CodeIllegalContinue:           "Illegal continue statement: no surrounding iteration statement",
	CodeUndefinedLabel:            "Undefined label '%s'",
	CodeDuplicateLabel:            "Label '%s' has already been declared",
	CodeWithInStrict:              "Strict mode code may not include a with statement",
	CodeDeleteIdentifier:          "Delete of an unqualified identifier in strict mode",
	CodeLegacyOctalStrict:         "Octal literals are not allowed in strict mode",
	CodeOctalEscapeStrict:         "Octal escape sequences are not allowed in strict mode",
	CodeUnexpectedReserved:        "Unexpected reserved word '%s'",
	CodeUnexpectedStrictReserved:  "Unexpected strict mode reserved word '%s'",
	CodeStrictEvalArguments:       "Unexpected '%s' in strict mode",
	CodeArgumentsInField:          "'arguments' is not allowed in class field initializer or static initialization block",
	CodeAwaitInParameter:          "Await expression cannot be used in function parameters",
	CodeYieldInParameter:          "Yield expression cannot be used in function parameters",
	CodeAwaitIdentifier:           "Cannot use 'await' as identifier inside an async function or module",
	CodeYieldIdentifier:           "Cannot use 'yield' as identifier inside a generator or in strict mode",
	CodeLetLexicalName:            "'let' is disallowed as a lexically bound name",
	CodeDuplicateParameter:        "Duplicate parameter name not allowed in this context",
	CodeUseStrictNonSimple:        "Illegal 'use strict' directive in function with non-simple parameter list",
	CodeRestNotLast:               "Rest element must be last element",
	CodeRestTrailingComma:         "Unexpected trailing comma after rest element",
	CodeRestInitializer:           "Rest parameter may not have a default initializer",
	CodeGetterArity:               "Getter must not have any formal parameters",
	CodeSetterArity:               "Setter must have exactly one formal parameter",
	CodeSetterRest:                "Setter function argument must not be a rest parameter",
	CodeAccessorModifier:          "An accessor cannot be async or a generator",
	CodeDuplicateConstructor:      "A class may only have one constructor",
	CodeConstructorSpecial:        "Class constructor may not be %s",
	CodePrivateConstructor:        "Classes may not have a private field named '#constructor'",
	CodeStaticPrototype:           "Classes may not have a static property named 'prototype'",
	CodeFieldConstructor:          "Classes may not have a field named 'constructor'",
	CodeDuplicatePrivateName:      "Identifier '#%s' has already been declared",
	CodeUndefinedPrivateName:      "Private field '#%s' must be declared in an enclosing class",
	CodePrivateNameMisuse:         "Private names are only valid in member access or as the left operand of 'in'",
	CodePrivateDelete:             "Private fields can not be deleted",
	CodeSuperOutsideMethod:        "'super' keyword unexpected here",
	CodeSuperCallOutsideCtor:      "'super' call is only valid in constructors of derived classes",
	CodeNewTargetOutside:          "new.target expression is not allowed here",
	CodeImportMetaOutsideModule:   "Cannot use 'import.meta' outside a module",
	CodeModuleSyntaxInScript:      "Cannot use import or export statements outside a module",
	CodeModuleSyntaxNotTopLevel:   "'import' and 'export' may only appear at the top level",
	CodeOptionalChainTemplate:     "Tagged template cannot be used in optional chain",
	CodeInvalidLeftValue:          "Invalid left-hand side expression",
	CodeDuplicateDefaultCase:      "More than one default clause in switch statement",
	CodeForInOfInitializer:        "for-%s loop variable declaration may not have an initializer",
	CodeForInOfMultipleBindings:   "Invalid left-hand side in for-%s loop: must have a single binding",
	CodeForOfAsync:                "The left-hand side of a for-of loop may not be 'async'",
	CodeForOfLet:                  "The left-hand side of a for-of loop may not start with 'let'",
	CodeMissingInitializer:        "Missing initializer in %s",
	CodeDuplicateExport:           "Duplicate export of '%s'",
	CodeUndefinedExport:           "Export '%s' is not defined",
	CodeNullishMixing:             "Nullish coalescing operator (??) requires parens when mixing with logical operators",
	CodeExponentUnary:             "Unary operator used immediately before exponentiation expression; parentheses must be used to disambiguate operator precedence",
	CodeLexicalInStatement:        "Lexical declaration cannot appear in a single-statement context",
	CodeFunctionInStatement:       "Functions can only be declared at top level or inside a block",
	CodeAsyncGeneratorInStatement: "Async functions and generators can only be declared at top level or inside a block",
	CodeParenthesizedPattern:      "Invalid parenthesized assignment pattern",
	CodeInvalidDestructuring:      "Invalid destructuring assignment target",
	CodeShorthandLiteral:          "Literal property names cannot be shorthand",
	CodeCoverInitializedName:      "Invalid shorthand property initializer",
	CodeDuplicateProto:            "Duplicate __proto__ fields are not allowed in object literals",
	CodePrivateInObject:           "Private names are not allowed in object literals",
	CodeLineBreakBeforeArrow:      "No line break is allowed before '=>'",
	CodeEmptyParenthesized:        "Empty parenthesized expression",
	CodeParenthesizedTrailing:     "Unexpected trailing comma in parenthesized expression",
	CodeSpreadInParenthesized:     "Spread is not allowed in a parenthesized expression",
	CodeLeadingComma:              "Unexpected leading comma in argument list",
	CodeThrowNewline:              "Illegal newline after throw",
	CodeYieldDelegateArgument:     "yield* must be followed by an expression",
	CodeFeatureVersion:            "%s requires ECMAScript %s or later",
	CodeDecoratorConstructor:      "Decorators can't be used with a constructor",
	CodeDecoratorPosition:         "Decorators are not valid here",
	CodeJSXTagMismatch:            "Expected corresponding JSX closing tag for '%s'",
	CodeJSXAdjacent:               "Adjacent JSX elements must be wrapped in an enclosing tag",
	CodeNewOptionalChain:          "Invalid optional chain from new expression",
	CodeImportCallArity:           "import() requires exactly one or two arguments",
	CodeAbstractMember:            "Abstract members can only appear within an abstract class",
	CodeAwaitOutsideAsync:         "'await' is only valid in async functions and the top level bodies of modules",
	CodeStaticBlockAwait:          "'await' is not allowed in class static initialization blocks",
	CodeLabelledFunction:          "Labelled function declarations are not allowed here",
	CodeInvalidModifier:           "'%s' modifier cannot appear here",
	CodeDuplicateModifier:         "'%s' modifier already seen",
	CodeCatchParamInitializer:     "Catch clause variable cannot have an initializer",
	CodeEscapedContextKeyword:     "Keyword '%s' must not contain escaped characters",
	CodeTemplateInvalidEscape:     "Invalid escape sequence in template",
	CodeStringExportName:          "A string literal cannot be used as an exported binding without 'from'",
	CodeIllegalUseStrictTarget:    "Unexpected '%s' in strict mode code",
}

// Format renders the message template for c with args.
func (c Code) Format(args ...interface{}) string {
	tmpl, ok := messages[c]
	if !ok {
		return string(c)
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// IsLexical reports whether c belongs to the lexical error range.
func (c Code) IsLexical() bool {
	return len(c) == 5 && c[1] == '0'
}
