package llm

import (
	"fmt"
	"strings"

	"e2edev/pkg/schema"
)

// Placeholder names recognized inside role templates. Which placeholders a
// given role's template uses is fixed by role; values for artifacts that the
// pipeline has not produced yet are substituted with the empty string.
const (
	PlaceholderRequirements = "requirements"
	PlaceholderConversation = "conversation"
	PlaceholderProjectPlan  = "project_plan"
	PlaceholderDesignSpecs  = "design_specs"
	PlaceholderImpl         = "implementation"
	PlaceholderDesign       = "design"
	PlaceholderTestResults  = "test_results"
)

// Placeholders returns every recognized placeholder name.
func Placeholders() []string {
	return []string{
		PlaceholderRequirements,
		PlaceholderConversation,
		PlaceholderProjectPlan,
		PlaceholderDesignSpecs,
		PlaceholderImpl,
		PlaceholderDesign,
		PlaceholderTestResults,
	}
}

const projectManagerTemplate = `You are the Project Manager. Analyze the following requirements and provide a structured project plan:

Requirements:
{requirements}

Current conversation:
{conversation}

Your response should include:
1. Project scope
2. Main features to implement
3. Technical requirements
4. Timeline and milestones
5. Task assignments for the team
6. Next steps
`

const designerTemplate = `You are the UI/UX Designer. Create design specifications based on the following requirements and project plan:

Requirements:
{requirements}

Project Plan:
{project_plan}

Current conversation:
{conversation}

Your response should include:
1. Wireframes description (describe key screens)
2. UI components needed
3. User flow diagrams
4. Design system suggestions (colors, typography, etc.)
5. Responsive design considerations
`

const developerTemplate = `You are the Developer. Write code based on the requirements and design specifications:

Requirements:
{requirements}

Design Specifications:
{design_specs}

Current conversation:
{conversation}

Your response should include:
1. Architecture overview
2. Implementation approach
3. Code structure
4. Sample code for key components
5. Dependencies and libraries needed
6. Setup instructions
`

const testerTemplate = `You are the Tester. Create a test plan and test cases based on the requirements and implemented code:

Requirements:
{requirements}

Implementation:
{implementation}

Current conversation:
{conversation}

Your response should include:
1. Test plan overview
2. Test scenarios
3. Test cases with expected results
4. Testing approach (manual/automated)
5. Edge cases to consider
6. Potential bugs to look for
`

const presenterTemplate = `You are the Presenter. Create a presentation of the final product based on all the work done:

Requirements:
{requirements}

Design:
{design}

Implementation:
{implementation}

Test Results:
{test_results}

Current conversation:
{conversation}

Your response should include:
1. Introduction to the product
2. Key features and functionality
3. Technical highlights
4. Implementation challenges and solutions
5. Demo script
6. Future enhancements
`

// roleTemplates is the prompt template registry: one fixed template per role.
var roleTemplates = map[schema.Role]string{
	schema.RoleProjectManager: projectManagerTemplate,
	schema.RoleDesigner:       designerTemplate,
	schema.RoleDeveloper:      developerTemplate,
	schema.RoleTester:         testerTemplate,
	schema.RolePresenter:      presenterTemplate,
}

// Template returns the prompt template for the given role. Roles outside
// the five recognized ones fail with *UnknownRoleError.
func Template(role schema.Role) (string, error) {
	tmpl, ok := roleTemplates[role]
	if !ok {
		return "", &UnknownRoleError{Role: string(role)}
	}
	return tmpl, nil
}

// RenderTemplate instantiates a template by substituting every {name}
// placeholder with its value. Placeholders missing from values are replaced
// with the empty string.
func RenderTemplate(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, 2*len(Placeholders()))
	for _, name := range Placeholders() {
		pairs = append(pairs, "{"+name+"}", values[name])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// BuildRevisionPrompt creates the prompt that asks for a revised artifact
// incorporating human feedback.
func BuildRevisionPrompt(section, original, feedback string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Revise the following %s based on this feedback: %s\n\n", strings.ToLower(section), feedback))
	sb.WriteString("Original content:\n")
	sb.WriteString(original)
	sb.WriteString("\n\nReturn the complete revised content, keeping the original structure and format. Do not include commentary about the changes.")

	return sb.String()
}

// BuildChangeSummaryPrompt creates the prompt that asks for a natural-language
// description of what changed between the original and revised artifact.
func BuildChangeSummaryPrompt(section, original, revised, feedback string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Describe in detail what changes were made to the %s based on this feedback: %s\n", strings.ToLower(section), feedback))
	sb.WriteString("Be specific about what was modified, added, or removed.\n\n")
	sb.WriteString("Original content:\n")
	sb.WriteString(original)
	sb.WriteString("\n\nUpdated content:\n")
	sb.WriteString(revised)

	return sb.String()
}
