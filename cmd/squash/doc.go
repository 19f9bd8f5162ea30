// 20 April 2020
// 27 april 2020

/*
Squash removes columns from a multiple sequence alignment

We take an a2m alignment whose first sequence is the query.
Any column where the query has a gap ('-' or '.') is removed from
every sequence, so the query comes out without gaps. This is what
plmc wants to see.

Usage:
	squash [-p plot.png] [-s stats.csv] [-v] [input] [output]


If no output file is given, stdout will be used.
If no input file is given, stdin will be used.
Input may be gzipped. Output lines are 80 characters wide.
Input and output may be the same file. Nothing is written unless the
whole alignment could be squashed.

With -s, write a csv file with one line per remaining column, giving
the query residue, the fraction of sequences that are not gaps there
and the number of different residues.

With -p, draw the same non-gap fractions as a bar chart in a png file.

With -v, report how many sequences there were and how many columns were
removed.
*/
package main
