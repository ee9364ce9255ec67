/**
 * Copyright (c) 2025, The Quell Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package rules provides the validation rules required by the GraphQL specification. Importing
// the package (usually blank) registers them as the validator's standard rule set.
package rules

import (
	"github.com/quellgo/quell/graphql/validator"
)

func init() {
	validator.InitStandardRules(
		UniqueOperationNames{},
		LoneAnonymousOperation{},
		SingleFieldSubscriptions{},
		KnownTypeNames{},
		FragmentsOnCompositeTypes{},
		VariablesAreInputTypes{},
		ScalarLeafs{},
		FieldsOnCorrectType{},
		UniqueFragmentNames{},
		KnownFragmentNames{},
		NoUnusedFragments{},
		PossibleFragmentSpreads{},
		NoFragmentCycles{},
		UniqueVariableNames{},
		NoUndefinedVariables{},
		NoUnusedVariables{},
		KnownDirectives{},
		UniqueDirectivesPerLocation{},
		KnownArgumentNames{},
		UniqueArgumentNames{},
		ProvidedRequiredArguments{},
		ValuesOfCorrectType{},
		UniqueInputFieldNames{},
		VariablesInAllowedPosition{},
	)
}
