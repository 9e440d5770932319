package usecase

// Prompt templates for every model call in the pipeline. Placeholders are
// filled with fmt.Sprintf; keep the %s counts in sync with the call sites.

const noRepositoriesSentinel = "No valid GitHub repositories found."

const unspecifiedJDSentinel = "UNSPECIFIED - Auto-detect best fit role from Resume"

// projectAnalysisPrompt: repo name, language summary, files bundle.
const projectAnalysisPrompt = `You are CareerCompass AI, an expert GitHub repository analyst.

Analyze the repository below from the perspective of a hiring manager judging
the author's engineering ability.

REPOSITORY: %s
LANGUAGES: %s

FILES:
%s

INSTRUCTIONS:
1. Identify what the project actually is and does (project_type + short_description).
2. List the tech stack you can verify from the files, most important first.
3. Rate implementation complexity 1-5 (1 = tutorial-level, 5 = production-grade system).
4. Write 2-4 resume bullets a recruiter would find credible, grounded in what the files show.
5. Suggest 2-4 concrete improvements that would raise the repository's hiring signal.

Return STRICT JSON matching the schema.`

// resumeHighlightsPrompt accompanies the inline resume file part.
const resumeHighlightsPrompt = `Analyze this resume line by line.

Split the full document into 15-30 segments covering every section (header,
summary, experience entries, education, skills). For each segment assign:
- rating: "green" (strong as-is), "yellow" (works but improvable), or "red" (hurts the candidate)
- label: a 2-4 word tag for the issue or strength
- comment: one actionable sentence
- suggested_text: a rewritten version, for yellow/red segments only

Also produce overall_feedback (3-5 sentences) and summary_counts tallying the
segments per rating.

Return STRICT JSON matching the schema.`

// mainAnalysisPrompt: job description text, repository digest.
const mainAnalysisPrompt = `You are CareerCompass AI, acting as a Strict, Top-Tier Hiring Manager (FAANG standard).
Your goal is a brutal, realistic assessment of this candidate. The resume file is attached.

INPUTS:
- Target JD Text: %s
- GitHub Summary: %s

INSTRUCTIONS:
1. ROLE DETECTION & MARKET CHECK: extract the candidate's name and headline from
   the resume. If the JD is unspecified, infer the best-fit role from the resume
   alone and anchor every score on it. Use current market information to ground
   role_demand and candidate_percentile in real demand, not guesses.
2. DYNAMIC COMPETENCY SCORING: generate competency categories relevant to the
   detected role; do not use a fixed taxonomy. STRICT NO-HALLUCINATION RULE:
   every competency claim must cite visible evidence (evidence_source +
   evidence_comment pointing at the resume or the GitHub summary). Skills with
   no evidence do not appear.
3. SKILL GAP ANALYSIS: compare current vs required level per skill against the
   JD (or the inferred role), with priorities.
4. ROADMAP: a 3-phase 90-day plan. Effort categories are dynamic keys chosen
   for this candidate, not a fixed list. Timeline items carry start/end weeks.
5. ASSETS: draft the cover letter, LinkedIn summary, outreach message and
   optimized resume bullets in the candidate's voice.
6. PORTFOLIO TEMPLATE: produce a complete single-file HTML portfolio page
   (TailwindCSS via CDN, responsive) in portfolio_template.
7. INTERVIEW TOPICS: 4-6 short topic strings for interview practice on this role.

Return STRICT JSON matching the schema.`

// interviewTopicsPrompt: role.
const interviewTopicsPrompt = `List 5-8 broad interview practice topics for a %s candidate.
Topics must be short labels (2-4 words), ordered from fundamentals to advanced.
Return STRICT JSON matching the schema.`

// interviewQuestionPrompt: role, topic.
const interviewQuestionPrompt = `Generate a challenging interview question for a %s candidate.
Topic: %s

Requirements:
- question_id: unique string
- question_text: one focused question, answerable verbally in 2-3 minutes
- expected_keywords: 3-5 technical terms a strong answer would contain
- hints: exactly 2 hints that nudge without revealing the answer

Return STRICT JSON matching the schema.`

// interviewEvaluationPrompt: question text, transcript.
const interviewEvaluationPrompt = `Evaluate this interview answer.

Question: %s
Candidate Answer (Transcript): %s

Score 0-100 overall and per dimension (structure, correctness, depth, clarity,
evidence, conciseness). Estimate delivery quality from the transcript text:
fluency_score (0-100), filler_word_count, confidence_estimate (0.0-1.0).
Call out specific issues with an approximate timestamp_sec assuming ~150 words
per minute. List what went well, what to improve, write an ideal better_answer,
and give categorized action_items (e.g. "practice", "study", "phrasing").

Return STRICT JSON matching the schema.`

// safeNavScript must be embedded verbatim in every generated portfolio page.
// Anchor-based navigation fails inside the sandboxed preview iframe, so nav
// clicks are rewritten to scrollIntoView at runtime.
const safeNavScript = `<script>
document.addEventListener('DOMContentLoaded', function () {
  document.querySelectorAll('a[href^="#"]').forEach(function (link) {
    link.addEventListener('click', function (e) {
      e.preventDefault();
      var target = document.querySelector(link.getAttribute('href'));
      if (target) { target.scrollIntoView({ behavior: 'smooth' }); }
    });
  });
});
</script>`

// portfolioPrompt: preferences JSON, candidate profile JSON, safe-nav script.
const portfolioPrompt = `Generate a complete single-page HTML portfolio website for this candidate.

DESIGN PREFERENCES (JSON):
%s

CANDIDATE PROFILE (JSON):
%s

HARD REQUIREMENTS:
- Return ONLY the raw HTML document. No Markdown, no commentary.
- Use TailwindCSS via CDN script tag. Fully responsive.
- Honor the preferences exactly: color theme (use Tailwind color classes),
  light/dark mode (dark mode forces dark background and light text), corner
  radius style, layout variant, font vibe, animation level, navigation style
  and the given section order.
- Render the contact email, phone and every custom link that is present.
  External links must carry target="_blank" rel="noopener noreferrer".
- Do NOT use anchor-based navigation. Embed this script verbatim before the
  closing body tag:
%s
- Only synthesize extra sections (e.g. "Publications") if the candidate
  profile contains evidence for them. Never invent achievements.`

// portfolioErrorHTML is returned when generation fails; the action is
// user-retriable so the failure must not propagate.
const portfolioErrorHTML = `<!DOCTYPE html>
<html><body style="font-family: sans-serif; padding: 2rem;">
<h1>Portfolio generation failed</h1>
<p>The generator could not produce a page. Please try again.</p>
</body></html>`
