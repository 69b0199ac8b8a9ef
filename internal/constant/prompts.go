package constant

// OnboardingSkipped is stored for every onboarding question the student
// left unanswered at registration.
const OnboardingSkipped = "User skipped this question."

// DefaultSessionTitle is replaced by a truncation of the first user message
// when the session was created without an explicit title.
const DefaultSessionTitle = "New Conversation"

// ProfileNoChange is the literal sentinel the model returns when a chat
// message contains nothing new for the stored profile description.
const ProfileNoChange = "NO_CHANGE"

const (
	ChatSenderUser = "user"
	ChatSenderAI   = "ai"
)

// CounselorSystemPromptV1 frames every chat turn. The %s slot carries the
// student's current profile description (or a placeholder when absent).
const CounselorSystemPromptV1 = `You are a college admissions counselor helping a high-school student plan their applications. Be encouraging, specific, and honest about selectivity. Ground advice in the student's profile below when relevant.

STUDENT PROFILE:
%s

Answer in Markdown. Keep answers focused on the student's question.`

// ProfileFromOnboardingPromptV1 turns the seven onboarding answers into the
// initial profile description paragraph.
const ProfileFromOnboardingPromptV1 = `Write a single prose paragraph (no headings, no bullet points) describing this student as a college applicant, based on their onboarding answers. Skip any answer equal to "User skipped this question.".

Programs of interest: %s
Current school: %s
Grade level: %s
GPA and test scores: %s
Location preferences: %s
Financial considerations: %s
Other priorities: %s`

// ProfileUpdatePromptV1 asks whether a new chat message changes the stored
// profile. The model must answer with either the NO_CHANGE sentinel or a
// full replacement paragraph.
const ProfileUpdatePromptV1 = `Current student profile:
%s

New message from the student:
%s

If the message contains new profile-relevant facts (interests, location, academic stats, financial needs, preferences added or retracted), respond with a full rewritten profile paragraph incorporating them. If nothing profile-relevant changed, respond with exactly NO_CHANGE and no other text.`

// RecommendationsPromptV1 requests exactly three college suggestions as JSON.
const RecommendationsPromptV1 = `You are recommending colleges to a high-school student.

STUDENT PROFILE:
%s

COLLEGES ALREADY ON THEIR LIST:
%s

COLLEGES ALREADY RECOMMENDED:
%s

STUDENT PREFERENCE FOR THIS BATCH: %s

Suggest exactly 3 colleges that are NOT in either list above. Unless the student's preference says otherwise, favor solid schools that are not highly selective over famous reach schools.

Respond with ONLY a JSON array of 3 objects, each with keys "name" (string), "description" (string, 1-2 sentences), "reason" (string, why it fits this student), "acceptance_rate" (number 0-100, or null if unknown). No other text.`
