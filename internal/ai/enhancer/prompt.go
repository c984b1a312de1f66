package enhancer

import "fmt"

const systemPrompt = "Você é um assistente de produtividade e organização de tarefas."

const userPromptTemplate = `O usuário escreveu as seguintes atividades ou tarefas (podem conter erros):
"%s"

REGRAS OBRIGATÓRIAS:
- NÃO crie tarefas que o usuário não escreveu nem invente passos extras.
- NÃO duplique tarefas com o mesmo horário.
- A saída deve ter EXATAMENTE a mesma quantidade de tarefas da entrada.
- Cada tarefa é identificada por um horário ou por estar em uma linha separada.
- Uma tarefa na entrada significa UMA linha na saída.

Instruções:
1. Corrija erros gramaticais e ortográficos.
2. Tarefas separadas por horários (ex.: "às 10h reunião, às 14h almoço") ficam em linhas separadas.
3. Dê a cada tarefa um título claro de no máximo 10 palavras.
4. Uma descrição curta só é permitida na MESMA linha, depois de " - ".
5. Preserve os horários existentes ("9h", "09:00", "9:30", "9h30").

Formato da resposta, uma tarefa por linha:
HH:MM título da tarefa
ou
título da tarefa

Responda APENAS com as tarefas, sem explicações.`

func buildUserPrompt(text string) string {
	return fmt.Sprintf(userPromptTemplate, text)
}
